package buses

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom `bustype` rule on gin's
// binding engine. "any" (search) and "all" (filter) are accepted
// alongside the concrete coach classes.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bustype", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" || s == "any" || s == "all" {
				return true
			}
			return BusType(s).IsValid()
		})
	}
}
