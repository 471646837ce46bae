package llm

import (
	"errors"
	"fmt"
)

const replyErrorPrefix = "something went wrong retrieving a response from the model"

var (
	ErrConfiguration    = errors.New("llm configuration error")
	ErrEmptyReply       = errors.New(replyErrorPrefix + ": no response was provided")
	ErrMalformedReply   = errors.New(replyErrorPrefix + ": the provided response could not be parsed into JSON")
	ErrMissingGenres    = errors.New(replyErrorPrefix + ": the parsed JSON does not contain the `genres` key")
	ErrCompletionFailed = errors.New("completion request failed")
)

// ConfigError reports a setting or secret that prevented client construction.
type ConfigError struct {
	Setting string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("llm configuration: %s", e.Setting)
	}
	return fmt.Sprintf("llm configuration: %s: %v", e.Setting, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// MissingGenresError carries the parsed reply that lacked a genres field.
type MissingGenresError struct {
	Payload string
}

func (e *MissingGenresError) Error() string {
	return fmt.Sprintf("%s: the parsed JSON %s does not contain the `genres` key", replyErrorPrefix, e.Payload)
}

func (e *MissingGenresError) Is(target error) bool {
	return target == ErrMissingGenres
}
