package util

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
)

// GetTokenPayloadFromContext 取出 middleware 放入的 token payload，沒有則回傳 nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	v := ctx.Value(constants.AuthorizationPayloadKey)
	if v == nil {
		return nil
	}
	payload, ok := v.(*token.Payload)
	if !ok {
		return nil
	}
	return payload
}

// GetRequestIDFromContext 取出 request id，沒有則回傳空字串
func GetRequestIDFromContext(ctx context.Context) string {
	v := ctx.Value(constants.RequestIDKey)
	if v == nil {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}
