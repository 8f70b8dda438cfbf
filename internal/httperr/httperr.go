package httperr

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond writes err using its kind. Errors without a kind are reported as a
// generic 500 and the cause is attached to the context for the request logger.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) || be.Kind == KindInternal {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPError{
			Code:    "internal_error",
			Message: "Error interno del servidor.",
		})
		return
	}

	c.AbortWithStatusJSON(be.Kind.Status(), HTTPError{
		Code:    be.Code,
		Message: be.Message,
		Fields:  be.Fields,
	})
}

// ===============================
// Binding
// ===============================

// UseJSONFieldNames makes validator errors report json tag names.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// FromBinding converts a ShouldBind error into InvalidInput.
func FromBinding(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return InvalidInput("invalid_input", "Datos obligatorios incompletos o inválidos.", fields...)
	}
	return InvalidInput("invalid_body", "El cuerpo de la solicitud no es un JSON válido.")
}
