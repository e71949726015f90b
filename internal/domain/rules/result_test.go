package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverbank/underwriting-service/internal/domain/rules"
)

func TestResult_Pass(t *testing.T) {
	res := rules.Pass()

	assert.True(t, res.OK())
	msg, ok := res.Message()
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestResult_Fail(t *testing.T) {
	res := rules.Fail("coverage amount exceeds product ceiling")

	assert.False(t, res.OK())
	msg, ok := res.Message()
	assert.True(t, ok)
	assert.Equal(t, "coverage amount exceeds product ceiling", msg)
}

func TestResult_FailWithEmptyMessageGetsDefault(t *testing.T) {
	res := rules.Fail("")

	assert.False(t, res.OK())
	msg, ok := res.Message()
	assert.True(t, ok)
	assert.NotEmpty(t, msg)
}
