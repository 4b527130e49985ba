package converrors

import (
	"errors"
	"testing"
)

func TestInputError(t *testing.T) {
	t.Run("Error message with message", func(t *testing.T) {
		err := &InputError{Name: "1234", Message: "name must contain at least one letter: \"1234\""}
		if err.Error() != "invalid input: name must contain at least one letter: \"1234\"" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with name only", func(t *testing.T) {
		err := &InputError{Name: "1234"}
		if err.Error() != `invalid input: "1234"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with no fields", func(t *testing.T) {
		err := &InputError{}
		if err.Error() != "invalid input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidInput", func(t *testing.T) {
		err := &InputError{Name: "--"}
		if !errors.Is(err, ErrInvalidInput) {
			t.Error("InputError should match ErrInvalidInput")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &InputError{}
		if errors.Is(err, ErrUnsupportedStyle) {
			t.Error("InputError should not match ErrUnsupportedStyle")
		}
	})
}

func TestStyleError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &StyleError{Style: "SCREAMING_SNAKE"}
		if err.Error() != `unsupported case style: "SCREAMING_SNAKE"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedStyle", func(t *testing.T) {
		err := &StyleError{Style: "nope"}
		if !errors.Is(err, ErrUnsupportedStyle) {
			t.Error("StyleError should match ErrUnsupportedStyle")
		}
	})

	t.Run("As extracts StyleError", func(t *testing.T) {
		var target *StyleError
		err := error(&StyleError{Style: "nope"})
		if !errors.As(err, &target) {
			t.Fatal("As should extract StyleError")
		}
		if target.Style != "nope" {
			t.Errorf("unexpected style: %s", target.Style)
		}
	})
}

func TestConventionError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConventionError
		want string
	}{
		{"category", &ConventionError{Category: "repository"}, "no repository convention defined"},
		{"language only", &ConventionError{Language: "cpp"}, "no conventions for language: cpp"},
		{"language element", &ConventionError{Language: "python", Element: "function"}, "no convention for python function"},
		{"empty", &ConventionError{}, "no convention defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrNoConvention) {
				t.Error("ConventionError should match ErrNoConvention")
			}
		})
	}
}

func TestPolicyError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("yaml: line 3: mapping values are not allowed")
		err := &PolicyError{
			Source:  "/home/u/.cache/openaec-conventions.yaml",
			IsCache: true,
			Message: "cached conventions file is corrupted",
			Hint:    "Delete it and try again",
			Cause:   cause,
		}
		msg := err.Error()
		want := "policy cache error (/home/u/.cache/openaec-conventions.yaml): cached conventions file is corrupted: yaml: line 3: mapping values are not allowed\nDelete it and try again"
		if msg != want {
			t.Errorf("unexpected error message:\n got %q\nwant %q", msg, want)
		}
	})

	t.Run("Is matches flagged sentinels", func(t *testing.T) {
		cacheErr := &PolicyError{IsCache: true}
		if !errors.Is(cacheErr, ErrPolicy) || !errors.Is(cacheErr, ErrCache) {
			t.Error("cache PolicyError should match ErrPolicy and ErrCache")
		}
		if errors.Is(cacheErr, ErrFetch) {
			t.Error("cache PolicyError should not match ErrFetch")
		}

		fetchErr := &PolicyError{IsFetch: true}
		if !errors.Is(fetchErr, ErrFetch) {
			t.Error("fetch PolicyError should match ErrFetch")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &PolicyError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestGHError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		cause := errors.New("exit status 1")
		err := &GHError{
			Args:   []string{"repo", "list", "OpenAEC-Foundation"},
			Output: "HTTP 401: Bad credentials\n",
			Cause:  cause,
		}
		want := "gh error: gh repo list OpenAEC-Foundation: exit status 1: HTTP 401: Bad credentials"
		if err.Error() != want {
			t.Errorf("unexpected error message:\n got %q\nwant %q", err.Error(), want)
		}
	})

	t.Run("Is matches ErrGH", func(t *testing.T) {
		err := &GHError{}
		if !errors.Is(err, ErrGH) {
			t.Error("GHError should match ErrGH")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConfigError{
			Option:  "pattern",
			Value:   "[invalid",
			Message: "override pattern does not compile",
		}
		want := "configuration error for pattern (value: [invalid): override pattern does not compile"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("wrapped chains survive fmt.Errorf", func(t *testing.T) {
		inner := &ConfigError{Option: "style"}
		wrapped := errors.Join(errors.New("outer"), inner)
		if !errors.Is(wrapped, ErrConfig) {
			t.Error("wrapped ConfigError should still match ErrConfig")
		}
	})
}
