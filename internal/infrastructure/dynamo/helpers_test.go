package dynamo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biteright/biteright-api/internal/domain"
)

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "username"}, ue.Names)
	_, ok := ue.Values[":v0"]
	assert.True(t, ok)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"password_hash":           "$2a$10$hash",
		"forgotten_password_code": "00112233",
		"is_verified":             true,
	}
	// Call twice to verify determinism.
	ue1, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	ue2, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, ue1.Expr, ue2.Expr)

	// Keys must be sorted: forgotten_password_code < is_verified < password_hash
	assert.Equal(t, "forgotten_password_code", ue1.Names["#f0"])
	assert.Equal(t, "is_verified", ue1.Names["#f1"])
	assert.Equal(t, "password_hash", ue1.Names["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue1.Expr)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"is_verified": true})
	require.NoError(t, err)
	av, ok := ue.Values[":v0"]
	require.True(t, ok)
	boolVal, isBool := av.(*types.AttributeValueMemberBOOL)
	require.True(t, isBool)
	assert.True(t, boolVal.Value)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestMapConditionErr_Nil(t *testing.T) {
	assert.NoError(t, mapConditionErr(nil))
}

func TestMapConditionErr_ConditionalCheckFailed(t *testing.T) {
	err := mapConditionErr(&types.ConditionalCheckFailedException{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMapConditionErr_TransactionCanceled(t *testing.T) {
	err := mapConditionErr(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMapConditionErr_TransactionCanceledOtherReason(t *testing.T) {
	wrapped := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ProvisionedThroughputExceeded")},
		},
	}
	err := mapConditionErr(wrapped)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrConflict))
}

func TestMapConditionErr_UnrelatedError(t *testing.T) {
	in := fmt.Errorf("network down")
	assert.Equal(t, in, mapConditionErr(in))
}

func TestStrKey(t *testing.T) {
	key := strKey("user_id", "u1")
	v, ok := key["user_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "u1", v.Value)
}
