package notify_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-sim/internal/infrastructure/notify"
	"pizzeria-sim/internal/observability"
)

type recordingLogger struct {
	msgs   *[]string
	fields *[]observability.Field
}

func (l recordingLogger) With(fields ...observability.Field) observability.Logger {
	*l.fields = append(*l.fields, fields...)
	return l
}
func (l recordingLogger) Debug(msg string, fields ...observability.Field) { l.record(msg, fields) }
func (l recordingLogger) Info(msg string, fields ...observability.Field)  { l.record(msg, fields) }
func (l recordingLogger) Warn(msg string, fields ...observability.Field)  { l.record(msg, fields) }
func (l recordingLogger) Error(msg string, fields ...observability.Field) { l.record(msg, fields) }

func (l recordingLogger) record(msg string, fields []observability.Field) {
	*l.msgs = append(*l.msgs, msg)
	*l.fields = append(*l.fields, fields...)
}

func TestEmailNotifierWritesConfirmation(t *testing.T) {
	var out bytes.Buffer
	n := notify.NewEmailNotifier(&out)

	n.Notify(decimal.NewFromInt(108))
	assert.Equal(t, "[Email] Sending order confirmation for Bs108...\n", out.String())
}

func TestAuditLoggerRecordsTotal(t *testing.T) {
	var msgs []string
	var fields []observability.Field
	logger := recordingLogger{msgs: &msgs, fields: &fields}

	a := notify.NewAuditLogger(logger)
	a.Notify(decimal.NewFromInt(90))

	require.Equal(t, []string{"order_recorded"}, msgs)

	got := map[string]any{}
	for _, f := range fields {
		got[f.Key] = f.Value
	}
	assert.Equal(t, "audit", got["component"])
	assert.Equal(t, "90", got["total"])
}
