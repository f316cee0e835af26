package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Validate(t *testing.T) {
	valid := Submission{Name: "Nguyễn Văn A", Email: "a@holo-group.com", Phone: "0912 345 678"}

	tests := []struct {
		name        string
		mutate      func(s *Submission)
		expectedErr error
	}{
		{name: "Valid", mutate: func(s *Submission) {}},
		{name: "MissingName", mutate: func(s *Submission) { s.Name = "  " }, expectedErr: ErrMissingFields},
		{name: "MissingEmail", mutate: func(s *Submission) { s.Email = "" }, expectedErr: ErrMissingFields},
		{name: "MissingPhone", mutate: func(s *Submission) { s.Phone = "" }, expectedErr: ErrMissingFields},
		{name: "BadEmail", mutate: func(s *Submission) { s.Email = "a@b" }, expectedErr: ErrInvalidEmail},
		{name: "BadPhone", mutate: func(s *Submission) { s.Phone = "12345" }, expectedErr: ErrInvalidPhone},
		{
			name:        "EmailCheckedBeforePhone",
			mutate:      func(s *Submission) { s.Email = "a@@b.com"; s.Phone = "12345" },
			expectedErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)

			err := sub.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
