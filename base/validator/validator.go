package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftlister/domain"
)

// New returns a validator with the project specific tags registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("chain", isChain)
	return v
}

// isChain accepts known chain tags, whether an adapter is wired is decided later
func isChain(fl validator.FieldLevel) bool {
	_, err := domain.GetChainInfo(domain.ChainType(fl.Field().String()))
	return err == nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return domain.NewValidationError(err.Error(), err)
	}
	return nil
}
