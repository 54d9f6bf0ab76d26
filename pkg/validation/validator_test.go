package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func validate(t *testing.T, v loginPayload) error {
	t.Helper()
	Init()
	return binding.Validator.ValidateStruct(v)
}

func TestValidLoginPayloadPasses(t *testing.T) {
	err := validate(t, loginPayload{Email: "user@example.com", Password: "password123"})
	require.NoError(t, err)
}

func TestFieldErrorsUseJSONTagNames(t *testing.T) {
	err := validate(t, loginPayload{Email: "not-an-email", Password: "ab"})
	require.Error(t, err)

	errs := ToFieldErrors(err)
	require.Len(t, errs, 2)

	byField := map[string]string{}
	for _, fe := range errs {
		require.Len(t, fe.Path, 1)
		byField[fe.Path[0]] = fe.Message
	}
	require.Equal(t, "must be a valid email", byField["email"])
	require.Contains(t, byField["password"], "at least 6")
}

func TestMissingFieldsAreRequired(t *testing.T) {
	err := validate(t, loginPayload{})
	require.Error(t, err)

	errs := ToFieldErrors(err)
	require.Len(t, errs, 2)
	for _, fe := range errs {
		require.Equal(t, "is required", fe.Message)
	}
}

func TestMalformedJSONMapsToPayloadEntry(t *testing.T) {
	var v loginPayload
	err := json.Unmarshal([]byte(`{"email":`), &v)
	require.Error(t, err)

	errs := ToFieldErrors(err)
	require.Len(t, errs, 1)
	require.Equal(t, []string{"payload"}, errs[0].Path)
	require.Equal(t, "invalid json", errs[0].Message)
}

func TestNilErrorYieldsNoEntries(t *testing.T) {
	require.Nil(t, ToFieldErrors(nil))
}
