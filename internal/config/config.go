package config

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SecretGetter resolves a secret from an ARN env var with a plain env var fallback.
type SecretGetter interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// EnvSecrets reads secrets straight from the environment, ignoring ARNs.
type EnvSecrets struct{}

func (EnvSecrets) GetSecretString(_ context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if v := os.Getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("secret not found in env var '%s'", fallbackEnvVar)
}

// Config is the process configuration, read once at startup.
type Config struct {
	Stage           string
	Port            string
	RPCURL          string
	RPCTimeout      time.Duration
	ReceiptTimeout  time.Duration
	PrivateKey      *ecdsa.PrivateKey
	ContractAddress common.Address
	CORS            CORSConfig
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// Load reads the configuration from the environment. Every missing or invalid
// required value is reported in a single error.
func Load(ctx context.Context, secrets SecretGetter) (*Config, error) {
	var problems []string

	cfg := &Config{
		Stage: getEnvWithDefault(constants.EnvStage, helpers.StageLocal),
		Port:  getEnvWithDefault(constants.EnvPort, constants.DefaultPort),
		CORS:  loadCORS(),
	}
	if !helpers.IsValidStage(cfg.Stage) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s, %s, %s", constants.EnvStage, helpers.StageLocal, helpers.StageDev, helpers.StageProd))
	}

	cfg.RPCURL = strings.TrimSpace(os.Getenv(constants.EnvRPCURL))
	if cfg.RPCURL == "" {
		problems = append(problems, constants.EnvRPCURL+" is required")
	}

	rawKey, err := secrets.GetSecretString(ctx, constants.EnvPrivateKeyARN, constants.EnvPrivateKey)
	if err != nil || strings.TrimSpace(rawKey) == "" {
		problems = append(problems, fmt.Sprintf("%s or %s is required", constants.EnvPrivateKey, constants.EnvPrivateKeyARN))
	} else if key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(rawKey), "0x")); err != nil {
		problems = append(problems, constants.EnvPrivateKey+" is not a valid secp256k1 key")
	} else {
		cfg.PrivateKey = key
	}

	contract := strings.TrimSpace(os.Getenv(constants.EnvContractAddress))
	switch {
	case contract == "":
		problems = append(problems, constants.EnvContractAddress+" is required")
	case !helpers.IsAddressValid(contract):
		problems = append(problems, constants.EnvContractAddress+" is not a valid address")
	default:
		cfg.ContractAddress = common.HexToAddress(contract)
	}

	if cfg.RPCTimeout, err = parseDuration(constants.EnvRPCTimeout, constants.DefaultRPCTimeout); err != nil {
		problems = append(problems, err.Error())
	}
	receiptDefault := constants.DefaultReceiptTimeout
	if os.Getenv(constants.EnvLambdaFunctionName) != "" {
		receiptDefault = constants.DefaultLambdaReceiptTimeout
	}
	if cfg.ReceiptTimeout, err = parseDuration(constants.EnvReceiptTimeout, receiptDefault); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, errors.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

func loadCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AllowedMethods:   helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_METHODS")),
		AllowedHeaders:   helpers.SplitAndTrim(os.Getenv("CORS_ALLOWED_HEADERS")),
		ExposedHeaders:   helpers.SplitAndTrim(os.Getenv("CORS_EXPOSED_HEADERS")),
		AllowCredentials: os.Getenv("CORS_ALLOW_CREDENTIALS") == "true",
	}
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	raw := getEnvWithDefault(key, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
