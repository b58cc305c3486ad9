package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// JSON fields.
	regexp.MustCompile(`(?s)("discordUsername":\s?").+?(")`),
	regexp.MustCompile(`(?s)("gamepassUrl":\s?").+?(")`),
	regexp.MustCompile(`(?s)("paymentCode":\s?").+?(")`),
	// Query string of the checkout navigation contract.
	regexp.MustCompile(`(discordUsername=)[^&\s]+()`),
	regexp.MustCompile(`(gamepassUrl=)[^&\s]+()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
