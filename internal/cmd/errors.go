package cmd

import (
	"errors"
	"io/fs"

	"github.com/slickdexic/layertrim/internal/config"
	cerrors "github.com/slickdexic/layertrim/internal/errors"
)

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	switch {
	case errors.Is(err, config.ErrTargetNotFound):
		return cerrors.WithSuggestion(err, cerrors.SuggestionListTargets)
	case errors.Is(err, fs.ErrNotExist):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckPath)
	}

	return err
}
