package contactclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_ChangeClearsFieldError(t *testing.T) {
	form := NewForm()
	assert.False(t, form.Validate())
	assert.Equal(t, "Name is required", form.Errors["name"])
	assert.Equal(t, "Email is required", form.Errors["email"])

	form.Change("name", "Jo")

	assert.Equal(t, "Jo", form.Values.Name)
	assert.NotContains(t, form.Errors, "name")
	assert.Contains(t, form.Errors, "email", "other errors stay until revalidated")

	form.Change("unknown", "x")
	assert.Equal(t, "Jo", form.Values.Name)
}

func TestForm_Validate(t *testing.T) {
	form := NewForm()
	form.Change("name", "Jo")
	form.Change("email", "jo@x.com")
	form.Change("message", "Hello there!")

	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors)
}

func TestForm_SubmitLifecycle(t *testing.T) {
	t.Run("success clears and closes", func(t *testing.T) {
		form := NewForm()
		form.Change("name", "Jo")
		form.Change("email", "jo@x.com")
		form.Change("message", "Hello there!")

		assert.True(t, form.BeginSubmit())
		assert.False(t, form.BeginSubmit(), "second submit is refused while busy")

		delay := form.Finish(&Result{Success: true, ID: "msg_1", Toast: ToastSent})

		assert.Equal(t, CloseDelay, delay)
		assert.Equal(t, 1500, int(delay.Milliseconds()))
		assert.False(t, form.Submitting)
		assert.Empty(t, form.Values.Name)
		assert.Empty(t, form.Values.Message)
		assert.Empty(t, form.Errors)
	})

	t.Run("failure keeps values", func(t *testing.T) {
		form := NewForm()
		form.Change("name", "Jo")
		form.Change("email", "jo@x.com")
		form.Change("message", "Hello there!")
		form.BeginSubmit()

		delay := form.Finish(&Result{
			Toast:  "Invalid email address",
			Fields: map[string]string{"email": "Please enter a valid email address"},
		})

		assert.Zero(t, delay)
		assert.False(t, form.Submitting)
		assert.Equal(t, "Jo", form.Values.Name)
		assert.Equal(t, "Hello there!", form.Values.Message)
		assert.Equal(t, "Please enter a valid email address", form.Errors["email"])
	})

	t.Run("transport failure", func(t *testing.T) {
		form := NewForm()
		form.Change("name", "Jo")
		form.BeginSubmit()

		assert.Zero(t, form.Finish(nil))
		assert.False(t, form.Submitting)
		assert.Equal(t, "Jo", form.Values.Name)
	})
}
