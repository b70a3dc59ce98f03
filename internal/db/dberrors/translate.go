package dberrors

import (
	"errors"

	"gorm.io/gorm"

	"ulascansenturk/forecast-api/internal/apperrors"
)

// Translate maps storage errors onto the application taxonomy. The gorm
// connection has to be opened with TranslateError for the constraint
// sentinels to appear. entity names the row the caller was looking for.
func Translate(err error, entity string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, err, entity+" not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.KindConflict, err, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Wrap(apperrors.KindNotFound, err, "City not found")
	}

	return err
}
