package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerValue(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		wantErr string
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "five", raw: "5", want: 5},
		{name: "leading_zero", raw: "03", want: 3},
		{name: "letters", raw: "abc", wantErr: "El valor no es digito: abc"},
		{name: "negative", raw: "-1", wantErr: "El valor no es digito: -1"},
		{name: "decimal", raw: "2.5", wantErr: "El valor no es digito: 2.5"},
		{name: "space", raw: " 3", wantErr: "El valor no es digito:  3"},
		{name: "arabic_indic_digit", raw: "٣", wantErr: "El valor no es digito: ٣"},
		{name: "fullwidth_digit", raw: "３", wantErr: "El valor no es digito: ３"},
		{name: "superscript_digit", raw: "²", wantErr: "El valor no es digito: ²"},
		{name: "too_large", raw: "10", wantErr: "Valor invalido: 10"},
		{name: "six", raw: "6", wantErr: "Valor invalido: 6"},
		{name: "overflow", raw: "99999999999999999999999", wantErr: "Valor invalido: 99999999999999999999999"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAnswerValue(tc.raw)
			if tc.wantErr != "" {
				var voteErr *VoteError
				require.True(t, errors.As(err, &voteErr))
				assert.Equal(t, tc.wantErr, voteErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFeedbackValue(t *testing.T) {
	for _, v := range ValidFeedbackValues {
		t.Run(string(v), func(t *testing.T) {
			got, err := ParseFeedbackValue(string(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseFeedbackValue("invalid_value")
		assert.EqualError(t, err, "Valor invalido: invalid_value")
	})

	t.Run("case_sensitive", func(t *testing.T) {
		_, err := ParseFeedbackValue("Like")
		assert.EqualError(t, err, "Valor invalido: Like")
	})
}

func TestQuestion_IsAuthoredBy(t *testing.T) {
	q := Question{AuthorID: "user-1"}
	assert.True(t, q.IsAuthoredBy("user-1"))
	assert.False(t, q.IsAuthoredBy("user-2"))
	assert.False(t, Question{}.IsAuthoredBy(""))
}
