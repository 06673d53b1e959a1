package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaVariant(t *testing.T) {
	tests := []struct {
		input   string
		variant SchemaVariant
	}{
		{input: "generic", variant: SchemaGeneric},
		{input: "", variant: SchemaGeneric}, // пустое значение — схема по умолчанию
		{input: "check_in_date", variant: SchemaCheckInDate},
		{input: "checkin_date", variant: SchemaCheckinDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			variant, err := ParseSchemaVariant(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.variant, variant)
		})
	}
}

func TestParseSchemaVariant_Unknown(t *testing.T) {
	_, err := ParseSchemaVariant("snake_dates")
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestSchemaVariant_Columns(t *testing.T) {
	tests := []struct {
		variant SchemaVariant
		start   string
		end     string
	}{
		{variant: SchemaGeneric, start: "start_time", end: "end_time"},
		{variant: SchemaCheckInDate, start: "check_in_date", end: "check_out_date"},
		{variant: SchemaCheckinDate, start: "checkin_date", end: "checkout_date"},
		// Неизвестный вариант откатывается к канонической схеме
		{variant: SchemaVariant("unknown"), start: "start_time", end: "end_time"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			cols := tt.variant.columns()
			assert.Equal(t, tt.start, cols.start)
			assert.Equal(t, tt.end, cols.end)
		})
	}
}
