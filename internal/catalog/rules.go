// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dacolabs/formcraft/internal/model"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

func checkEmail(_ model.Field, value string) []string {
	if !emailPattern.MatchString(value) {
		return []string{"Please enter a valid email address"}
	}
	return nil
}

func checkPhone(_ model.Field, value string) []string {
	if !phonePattern.MatchString(phoneNoise.Replace(value)) {
		return []string{"Please enter a valid phone number"}
	}
	return nil
}

// checkLength counts characters, not bytes. A zero bound is treated as unset.
func checkLength(f model.Field, value string) []string {
	var errs []string
	n := utf8.RuneCountInString(value)
	if f.MinLength != nil && *f.MinLength > 0 && n < *f.MinLength {
		errs = append(errs, fmt.Sprintf("Minimum length is %d characters", *f.MinLength))
	}
	if f.MaxLength != nil && *f.MaxLength > 0 && n > *f.MaxLength {
		errs = append(errs, fmt.Sprintf("Maximum length is %d characters", *f.MaxLength))
	}
	return errs
}

func checkNumber(f model.Field, value string) []string {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) {
		return []string{"Please enter a valid number"}
	}
	var errs []string
	if f.Min != nil && n < *f.Min {
		errs = append(errs, "Minimum value is "+FormatNumber(*f.Min))
	}
	if f.Max != nil && n > *f.Max {
		errs = append(errs, "Maximum value is "+FormatNumber(*f.Max))
	}
	return errs
}

// FormatNumber renders a bound in its shortest decimal form (1, 2.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
