package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("local")
}

type mockSecretsAPI struct {
	mock.Mock
}

func (m *mockSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, aws.ToString(params.SecretId))
	out, _ := args.Get(0).(*secretsmanager.GetSecretValueOutput)
	return out, args.Error(1)
}

const testARN = "arn:aws:secretsmanager:us-east-1:000000000000:secret:relayer-key"

func TestGetSecretString(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		arn         string
		fallback    string
		setupMock   func(m *mockSecretsAPI)
		want        string
		wantErr     bool
		errorString string
	}{
		{
			name: "reads from secrets manager",
			arn:  testARN,
			setupMock: func(m *mockSecretsAPI) {
				m.On("GetSecretValue", ctx, testARN).
					Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("from-arn")}, nil).Once()
			},
			want: "from-arn",
		},
		{
			name:     "falls back when fetch fails",
			arn:      testARN,
			fallback: "from-env",
			setupMock: func(m *mockSecretsAPI) {
				m.On("GetSecretValue", ctx, testARN).Return(nil, errors.New("access denied")).Once()
			},
			want: "from-env",
		},
		{
			name:     "falls back on empty secret",
			arn:      testARN,
			fallback: "from-env",
			setupMock: func(m *mockSecretsAPI) {
				m.On("GetSecretValue", ctx, testARN).
					Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("")}, nil).Once()
			},
			want: "from-env",
		},
		{
			name:      "uses env without an arn",
			fallback:  "from-env",
			setupMock: func(m *mockSecretsAPI) {},
			want:      "from-env",
		},
		{
			name:        "missing everywhere",
			setupMock:   func(m *mockSecretsAPI) {},
			wantErr:     true,
			errorString: "secret not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)

			api := &mockSecretsAPI{}
			tt.setupMock(api)
			client := NewSecretsManagerClientFromAPI(api)

			got, err := client.GetSecretString(ctx, "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			api.AssertExpectations(t)
		})
	}
}
