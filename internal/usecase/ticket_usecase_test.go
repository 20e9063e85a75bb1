package usecase

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Hotel Marés")

	_, err := f.tickets.Create(ctx, testSession, TicketInput{ClientID: c.ID})
	assert.ErrorIs(t, err, ErrInvalidTicketDescription)
	_, err = f.tickets.Create(ctx, testSession, TicketInput{ClientID: "ghost", Description: "x"})
	assert.ErrorIs(t, err, ErrClientNotFound)

	t1, err := f.tickets.Create(ctx, testSession, TicketInput{ClientID: c.ID, Description: "Ar condicionado pingando"})
	require.NoError(t, err)
	t2, err := f.tickets.Create(ctx, testSession, TicketInput{ClientID: c.ID, Description: "Bomba da piscina"})
	require.NoError(t, err)

	yymm := time.Now().UTC().Format("0601")
	assert.Equal(t, "CHM-"+yymm+"00001", t1.Number)
	assert.Equal(t, "CHM-"+yymm+"00002", t2.Number)
	assert.Equal(t, entities.TicketStatusAberto, t1.Status)

	moved, err := f.tickets.ChangeStatus(ctx, testSession, t1.ID, entities.TicketStatusConcluido, "resolvido na visita")
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusConcluido, moved.Status)
	require.Len(t, moved.History, 2)
	assert.Equal(t, "resolvido na visita", moved.History[1].Detail)

	_, err = f.tickets.ChangeStatus(ctx, testSession, t1.ID, entities.TicketStatusAberto, "")
	assert.ErrorIs(t, err, ErrInvalidTicketTransition)

	_, err = f.tickets.ChangeStatus(ctx, testSession, t1.ID, "fechado", "")
	assert.ErrorIs(t, err, ErrInvalidTicketStatus)

	all, err := f.tickets.List(ctx, testSession)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
