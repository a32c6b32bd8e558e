package domain

// VerificationCode is the single live email-ownership proof for a user.
// PK: user_id, one slot per user, replaced in place on reissue.
// ExpiresAt is logical expiry (Unix seconds); PurgeAt is the DynamoDB TTL
// attribute, set 24h later so an expired row is still readable and the
// expired-code recovery path (reissue + resend) stays reachable.
type VerificationCode struct {
	UserID    string `json:"user_id" dynamodbav:"user_id"`
	Code      string `json:"-" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
	PurgeAt   int64  `json:"-" dynamodbav:"purge_at"`
}
