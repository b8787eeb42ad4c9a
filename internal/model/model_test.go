package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStepResultCreation(t *testing.T) {
	t.Parallel()

	t.Run("creates step result with all fields", func(t *testing.T) {
		t.Parallel()
		now := time.Now()
		result := StepResult{
			ResourceID: "CORP",
			Status:     StatusSuccess,
			Message:    "OK 204",
			Output:     json.RawMessage(`{"ok":true}`),
			Duration:   time.Second,
			Timestamp:  now,
		}

		require.Equal(t, "CORP", result.ResourceID)
		require.Equal(t, StatusSuccess, result.Status)
		require.Equal(t, "OK 204", result.Message)
		require.JSONEq(t, `{"ok":true}`, string(result.Output))
		require.Equal(t, time.Second, result.Duration)
		require.Equal(t, now, result.Timestamp)
	})

	t.Run("creates step result with error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("API request failed with code 400")
		result := StepResult{
			ResourceID: "CORP",
			Status:     StatusFailed,
			Error:      err,
		}

		require.Equal(t, StatusFailed, result.Status)
		require.Equal(t, err, result.Error)
	})
}

func TestStatusConstants(t *testing.T) {
	t.Parallel()

	require.Equal(t, "success", StatusSuccess)
	require.Equal(t, "skipped", StatusSkipped)
	require.Equal(t, "failed", StatusFailed)
	require.Equal(t, "would_create", StatusWouldCreate)
	require.Equal(t, "would_update", StatusWouldUpdate)
}
