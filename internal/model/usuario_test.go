package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The 409-on-duplicate contract depends on email and senha sharing one
// unique index. Two independently-named indexes would make email unique on
// its own and reject same-email registrations that must succeed.
func TestUsuarioCompositeUniqueIndex(t *testing.T) {
	s, err := schema.Parse(&Usuario{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "usuario_lista", s.Table)

	idx := s.LookIndex("usuario_unique_id")
	require.NotNil(t, idx, "composite unique index usuario_unique_id missing")
	assert.Equal(t, "UNIQUE", idx.Class)

	fields := make([]string, 0, len(idx.Fields))
	for _, f := range idx.Fields {
		fields = append(fields, f.DBName)
	}
	assert.ElementsMatch(t, []string{"email", "senha"}, fields)
}

// Neither column may be unique by itself: the same email with a different
// senha is a valid second usuario.
func TestUsuarioColumnsNotIndividuallyUnique(t *testing.T) {
	s, err := schema.Parse(&Usuario{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	email := s.LookUpField("Email")
	require.NotNil(t, email)
	assert.False(t, email.Unique)

	senha := s.LookUpField("Senha")
	require.NotNil(t, senha)
	assert.False(t, senha.Unique)
}

func TestUsuarioPrimaryKeyColumn(t *testing.T) {
	s, err := schema.Parse(&Usuario{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	require.Len(t, s.PrimaryFields, 1)
	assert.Equal(t, "pk_usuario", s.PrimaryFields[0].DBName)
}
