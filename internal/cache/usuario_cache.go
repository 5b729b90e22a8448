package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"barberbook/internal/model"
)

// UsuarioCache keeps usuario rows in redis so repeated lookups by id skip the
// store. Entries expire by TTL and are dropped eagerly on delete.
type UsuarioCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewUsuarioCache(client *redisv9.Client, ttl time.Duration) *UsuarioCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &UsuarioCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *UsuarioCache) GetUsuario(ctx context.Context, id uint) (*model.Usuario, bool, error) {
	raw, err := c.client.Get(ctx, c.usuarioKey(id)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get usuario failed: %w", err)
	}

	var usuario model.Usuario
	if err := json.Unmarshal([]byte(raw), &usuario); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached usuario failed: %w", err)
	}
	return &usuario, true, nil
}

func (c *UsuarioCache) SetUsuario(ctx context.Context, usuario *model.Usuario) error {
	payload, err := json.Marshal(usuario)
	if err != nil {
		return fmt.Errorf("marshal usuario cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.usuarioKey(usuario.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set usuario failed: %w", err)
	}
	return nil
}

func (c *UsuarioCache) DeleteUsuario(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, c.usuarioKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete usuario failed: %w", err)
	}
	return nil
}

func (c *UsuarioCache) usuarioKey(id uint) string {
	return fmt.Sprintf("usuario:view:%d", id)
}
