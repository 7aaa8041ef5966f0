package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to RentalStatus
	}{
		{RentalStatusPending, RentalStatusQuotation},
		{RentalStatusPending, RentalStatusCancelled},
		{RentalStatusQuotation, RentalStatusQuotationApproved},
		{RentalStatusQuotationApproved, RentalStatusMobilization},
		{RentalStatusQuotationApproved, RentalStatusActive},
		{RentalStatusMobilization, RentalStatusMobilizationCompleted},
		{RentalStatusMobilizationCompleted, RentalStatusActive},
		{RentalStatusActive, RentalStatusExtensionRequested},
		{RentalStatusActive, RentalStatusOverdue},
		{RentalStatusActive, RentalStatusCompleted},
		{RentalStatusExtensionRequested, RentalStatusActive},
		{RentalStatusOverdue, RentalStatusExtensionRequested},
		{RentalStatusOverdue, RentalStatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to RentalStatus
	}{
		{RentalStatusPending, RentalStatusActive},
		{RentalStatusPending, RentalStatusQuotationApproved},
		{RentalStatusQuotation, RentalStatusActive},
		{RentalStatusMobilization, RentalStatusActive},
		{RentalStatusOverdue, RentalStatusCancelled},
		{RentalStatusOverdue, RentalStatusActive},
		{RentalStatusCompleted, RentalStatusActive},
		{RentalStatusCancelled, RentalStatusPending},
		{RentalStatusActive, RentalStatusPending},
	}
	for _, tc := range forbidden {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be forbidden", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, RentalStatusCompleted.IsTerminal())
	assert.True(t, RentalStatusCancelled.IsTerminal())

	for _, s := range []RentalStatus{
		RentalStatusPending, RentalStatusQuotation, RentalStatusQuotationApproved,
		RentalStatusMobilization, RentalStatusMobilizationCompleted,
		RentalStatusActive, RentalStatusExtensionRequested, RentalStatusOverdue,
	} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, RentalStatusActive.IsValid())
	assert.False(t, RentalStatus("SHIPPED").IsValid())
	assert.False(t, RentalStatus("").IsValid())
}
