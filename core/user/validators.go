package user

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/classboard/core"
)

var (
	userRoleTag  = "userrole"
	userRoleText = "invalid role"
)

// InitValidators registers the user validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(userRoleTag, userRoleValidation)
	core.RegisterCustomTranslation(validate, translator, userRoleTag, userRoleText)
}

// Custom Validators

// userRoleValidation checks that the provided role is one of Roles
func userRoleValidation(fl validator.FieldLevel) bool {
	role := Role(fl.Field().String())
	for _, r := range Roles {
		if r.Value == role {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
