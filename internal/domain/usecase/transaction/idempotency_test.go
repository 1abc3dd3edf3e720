package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockpersistence "github.com/jbdata/ledger-engine/mocks/port/persistence"
)

func TestIdempotencyHandler_AlreadyRecorded(t *testing.T) {
	testCases := []struct {
		name           string
		reference      string
		mockSetup      func(repo *mockpersistence.MockTransactionRepository)
		expectedResult bool
		expectError    bool
	}{
		{
			name:      "reference exists",
			reference: "existing-reference",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().ExistsByReference(mock.Anything, "existing-reference").Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name:      "reference is new",
			reference: "new-reference",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().ExistsByReference(mock.Anything, "new-reference").Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name:      "database error",
			reference: "any-reference",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().ExistsByReference(mock.Anything, "any-reference").Return(false, errors.New("database connection error"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := mockpersistence.NewMockTransactionRepository(t)
			tc.mockSetup(repo)
			handler := NewIdempotencyHandler(repo)

			// Act
			found, err := handler.AlreadyRecorded(context.Background(), tc.reference)

			// Assert
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to check if transaction exists")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedResult, found)
		})
	}
}
