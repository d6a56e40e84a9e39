package constants

// Environment variable names read at startup.
const (
	EnvStage           = "STAGE"
	EnvPort            = "PORT"
	EnvRPCURL          = "RPC_URL"
	EnvRPCTimeout      = "RPC_TIMEOUT"
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvPrivateKeyARN   = "PRIVATE_KEY_ARN"
	EnvContractAddress = "CONTRACT_ADDRESS"
	EnvReceiptTimeout  = "RECEIPT_TIMEOUT"

	// EnvLambdaFunctionName is set by the Lambda runtime.
	EnvLambdaFunctionName = "AWS_LAMBDA_FUNCTION_NAME"
)

const (
	DefaultPort           = "8000"
	DefaultRPCTimeout     = "30s"
	DefaultReceiptTimeout = "2m"

	// API Gateway cuts Lambda integrations off at 29s.
	DefaultLambdaReceiptTimeout = "25s"

	// NativeDecimals is the number of decimals of the chain's native currency.
	NativeDecimals = 18
)

// Instruction messages returned alongside unsigned transactions.
const (
	MsgApproveBeforeListing = "Approve the marketplace to spend %s tokens, then submit the listing"
	MsgSignListing          = "Sign and submit to list %s tokens at %s wei"
	MsgSignPurchase         = "Sign and submit to purchase listing %s"
	MsgSignWithdraw         = "Sign and submit to withdraw %s wei of earnings"
	MsgTransactionConfirmed = "Transaction confirmed: %s"
)
