package inquiries

import (
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

func validate(kind string, v interface{}) error {
	if err := validators.Struct(v); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid "+kind, err)
	}
	return nil
}
