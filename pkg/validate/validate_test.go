package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type contactInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,basicemail"`
}

var contactMessages = Messages{
	"name":  {"required": "Name is required"},
	"email": {"required": "Email is required", "basicemail": "Invalid email format"},
}

func TestStruct_FieldMessages(t *testing.T) {
	v := New()

	errs := v.Struct(contactInput{Name: "", Email: "not-an-email"}, contactMessages)
	require.Equal(t, map[string]string{
		"name":  "Name is required",
		"email": "Invalid email format",
	}, errs)

	errs = v.Struct(contactInput{Name: "A", Email: ""}, contactMessages)
	require.Equal(t, map[string]string{"email": "Email is required"}, errs)

	require.Nil(t, v.Struct(contactInput{Name: "A", Email: "a@b.co"}, contactMessages))
}

func TestIsEmail(t *testing.T) {
	require.True(t, IsEmail("user@example.com"))
	require.False(t, IsEmail("user@example"))
	require.False(t, IsEmail("us er@example.com"))
	require.False(t, IsEmail("not-an-email"))
}

func TestVar_ObjectID(t *testing.T) {
	v := New()
	require.NoError(t, v.Var("64b7f0c2a1b2c3d4e5f60718", "objectid"))
	require.Error(t, v.Var("xyz", "objectid"))
}
