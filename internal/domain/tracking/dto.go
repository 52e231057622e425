package tracking

import (
	"fmt"
	"time"

	"github.com/rndpresence/presence-backend-go/internal/pkg/validator"
)

type RequestDataRequest struct {
	PIUsernames []string `json:"piUsernames"`
	Month       int      `json:"month"`
	Year        int      `json:"year"`
}

func (r *RequestDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PIUsernames) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "piUsernames",
			Message: "at least one PI username is required",
		})
	}
	for _, pi := range r.PIUsernames {
		if validator.IsEmpty(pi) {
			errs = append(errs, validator.ValidationError{
				Field:   "piUsernames",
				Message: "PI usernames must not be empty",
			})
			break
		}
	}

	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RequestDataRequest) Period() Period {
	return Period{Month: r.Month, Year: r.Year}
}

type SubmitRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *SubmitRequest) Validate() error {
	if errs := validatePeriod(r.Month, r.Year); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SubmitRequest) Period() Period {
	return Period{Month: r.Month, Year: r.Year}
}

// PIStatus pairs a derived status with the PI's display name for the HR
// status sweep.
type PIStatus struct {
	Status   Status `json:"status"`
	FullName string `json:"fullName"`
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if year < 2020 || year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	return errs
}
