package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage("", ""))
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage("-3", "abc"))
	assert.Equal(t, Page{Number: 3, Size: MaxPageSize}, NewPage("3", "500"))

	p := NewPage("4", "10")
	assert.Equal(t, 30, p.Offset())
}

func TestNewPage_HugeNumberStaysPositive(t *testing.T) {
	for _, raw := range []string{"92233720368547758", "9223372036854775807", "99999999999999999999999"} {
		p := NewPage(raw, "100")
		assert.Equal(t, MaxPageNumber, p.Number, raw)
		assert.Equal(t, (MaxPageNumber-1)*MaxPageSize, p.Offset(), raw)
		assert.Positive(t, p.Offset(), raw)
	}

	// literals built outside NewPage are bounded too
	assert.Equal(t, (MaxPageNumber-1)*MaxPageSize, Page{Number: 1 << 62, Size: 1 << 20}.Offset())
	assert.Equal(t, 0, Page{}.Offset())
}

func TestParseSort(t *testing.T) {
	allowed := map[string]string{"fecha": "fecha_solicitada", "id": "id"}
	def := Sort{Column: "id"}

	assert.Equal(t, Sort{Column: "fecha_solicitada", Desc: true}, ParseSort("-fecha", allowed, def))
	assert.Equal(t, Sort{Column: "id"}, ParseSort("id", allowed, def))
	assert.Equal(t, def, ParseSort("password; drop table", allowed, def))
	assert.Equal(t, "fecha_solicitada DESC", ParseSort("-fecha", allowed, def).String())
}
