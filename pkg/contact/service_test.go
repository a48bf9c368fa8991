// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package contact -destination ./mock_interfaces.go -source=./interfaces.go

func TestService_Send(t *testing.T) {
	valid := Message{Name: " Ana ", Email: "ana@example.com", Subject: "Viewing", Message: "Can I see the flat on Monday?"}

	testCases := []struct {
		name             string
		address          string
		msg              Message
		setupMocks       func(*MockNotifierInterface)
		expectedErr      error
		expectedWarnings int
	}{
		{
			name:    "relayed to the contact address",
			address: "support@rental.local",
			msg:     valid,
			setupMocks: func(n *MockNotifierInterface) {
				n.EXPECT().Notify(gomock.Any(), notifications.Notification{
					To:       "support@rental.local",
					ReplyTo:  "ana@example.com",
					Template: notifications.TemplateContactUs,
					Data: map[string]string{
						"name":    "Ana",
						"email":   "ana@example.com",
						"subject": "Viewing",
						"message": "Can I see the flat on Monday?",
					},
				}).Return(nil)
			},
		},
		{
			name:             "delivery failure is a warning",
			address:          "support@rental.local",
			msg:              valid,
			setupMocks:       func(n *MockNotifierInterface) { n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("queue closed")) },
			expectedWarnings: 1,
		},
		{
			name:        "invalid email",
			address:     "support@rental.local",
			msg:         Message{Name: "Ana", Email: "ana", Subject: "Hi", Message: "Hello"},
			setupMocks:  func(*MockNotifierInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "blank message",
			address:     "support@rental.local",
			msg:         Message{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "   "},
			setupMocks:  func(*MockNotifierInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "no contact address",
			msg:         valid,
			setupMocks:  func(*MockNotifierInterface) {},
			expectedErr: types.ErrBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			notifier := NewMockNotifierInterface(ctrl)
			tc.setupMocks(notifier)

			svc := NewService(tc.address, notifier, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

			warnings, err := svc.Send(context.Background(), tc.msg)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if len(warnings) != tc.expectedWarnings {
				t.Errorf("expected %d warnings, got %v", tc.expectedWarnings, warnings)
			}
		})
	}
}
