package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUsername  = "username"
	fieldEmail     = "email"
	fieldUpdatedAt = "updated_at"

	// claimAttr is the partition key of the uniqueness-claims table. Claims
	// look like "username#alice" or "email#alice@example.com".
	claimAttr = "claim"
)
