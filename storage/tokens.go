package storage

import "context"

// TokenKeeper exposes the token key of a device store as an api.TokenStore.
type TokenKeeper struct {
	KV KeyValue
}

func Tokens(kv KeyValue) *TokenKeeper {
	return &TokenKeeper{KV: kv}
}

func (t *TokenKeeper) Token(ctx context.Context) (string, error) {
	v, _, err := t.KV.Get(ctx, KeyToken)
	return v, err
}

func (t *TokenKeeper) SetToken(ctx context.Context, token string) error {
	return t.KV.Set(ctx, KeyToken, token)
}

func (t *TokenKeeper) ClearToken(ctx context.Context) error {
	return t.KV.Remove(ctx, KeyToken)
}
