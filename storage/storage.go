// Package storage holds the durable per-device key/value store that plays the
// role of the browser's local storage.
package storage

import (
	"context"
	"errors"
	"strings"
)

// Well-known keys.
const (
	KeyTableSession = "tableSession"
	KeyToken        = "token"
)

var ErrEmptyKey = errors.New("storage key must not be empty")

// KeyValue is a string store. Get reports ok=false for an absent key.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type namespaced struct {
	kv     KeyValue
	prefix string
}

// Namespace scopes every key of kv under ns, so one backing store can hold
// many devices.
func Namespace(kv KeyValue, ns string) KeyValue {
	return &namespaced{kv: kv, prefix: strings.TrimSuffix(ns, ":") + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	return n.kv.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.kv.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.kv.Remove(ctx, n.prefix+key)
}
