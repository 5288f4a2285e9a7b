package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldAccount     = "account"
	FieldRecipient   = "recipient"
	FieldFriend      = "friend"
	FieldAmountCents = "amount_cents"
	FieldDescription = "description"
	FieldSuccess     = "success"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldBalance     = "balance_cents"
	FieldSeedFile    = "seed_file"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentDemo   = "demo"
	ComponentConfig = "config"
)

// Operations defines standard operation names
const (
	OpCreateAccount = "create_account"
	OpAddFriend     = "add_friend"
	OpPay           = "pay"
	OpRenderFeed    = "render_feed"
	OpSeed          = "seed"
)
