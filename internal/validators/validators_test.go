package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	blank := "   "
	val := "  Ana "

	assert.Nil(t, Optional(nil))
	assert.Nil(t, Optional(&blank))
	assert.Equal(t, "Ana", *Optional(&val))
	assert.Nil(t, OptionalString(""))
}

func TestMissing(t *testing.T) {
	got := Missing(
		[2]string{"nombres", "Ana"},
		[2]string{"telefono", " "},
		[2]string{"fecha_solicitada", ""},
	)
	assert.Equal(t, []string{"telefono", "fecha_solicitada"}, got)
	assert.Empty(t, Missing([2]string{"nombres", "Ana"}))
}

func TestEmailChecks(t *testing.T) {
	assert.True(t, IsEmailWellFormed("ana@clinica.pe"))
	assert.False(t, IsEmailWellFormed("Ana <ana@clinica.pe>"))
	assert.False(t, IsEmailWellFormed("ana"))
	assert.False(t, IsEmailDomainValid("ana@"))
	assert.False(t, IsEmailDomainValid("no-at-sign"))
}
