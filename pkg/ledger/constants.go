package ledger

const (
	operationOpenAccount    = "open_account"
	operationUpdateProfile  = "update_profile"
	operationPurchase       = "purchase"
	operationTopUp          = "top_up"
	operationMarkProcessing = "mark_processing"
	operationSettle         = "settle"
	operationPublish        = "publish"
	operationCreateProvider = "create_provider"
	operationCreateProduct  = "create_product"
	operationUpdateProduct  = "update_product"

	operationStatusOK       = "ok"
	operationStatusError    = "error"
	operationStatusReplayed = "replayed"

	defaultPageLimit = 10
	maxPageLimit     = 200

	topUpReferencePrefix = "topup"
)
