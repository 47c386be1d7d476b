package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

func TestHub_BroadcastReachesRoomMembersOnly(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 8, nil)
	a := hub.Subscribe("r1")
	b := hub.Subscribe("r1")
	other := hub.Subscribe("r2")
	defer a.Close()
	defer b.Close()
	defer other.Close()

	delivered, dropped := hub.Broadcast(mustEncode(t, domain.EventCardAdded, "r1"))

	assert.Equal(t, 2, delivered)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, "card-added", receive(t, a).Type)
	assert.Equal(t, "card-added", receive(t, b).Type)
	expectNothing(t, other)
}

func TestHub_NoReplayForLateJoiners(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 8, nil)
	early := hub.Subscribe("r1")
	defer early.Close()

	hub.Broadcast(mustEncode(t, domain.EventCardAdded, "r1"))

	late := hub.Subscribe("r1")
	defer late.Close()
	hub.Broadcast(mustEncode(t, domain.EventVoteChanged, "r1"))

	assert.Equal(t, "card-added", receive(t, early).Type)
	assert.Equal(t, "vote-changed", receive(t, early).Type)
	assert.Equal(t, "vote-changed", receive(t, late).Type)
	expectNothing(t, late)
}

func TestHub_PerSubscriberOrderFollowsBroadcastOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 16, nil)
	sub := hub.Subscribe("r1")
	defer sub.Close()

	types := []domain.EventType{domain.EventCardAdded, domain.EventVoteChanged, domain.EventCommentAdded, domain.EventCardDeleted}
	for _, typ := range types {
		hub.Broadcast(mustEncode(t, typ, "r1"))
	}
	for _, typ := range types {
		assert.Equal(t, typ.String(), receive(t, sub).Type)
	}
}

func TestHub_FullBufferDropsAndCounts(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &countingMetrics{}
	hub := NewHub(testLogger(), 1, m)
	slow := hub.Subscribe("r1")
	fast := hub.Subscribe("r1")
	defer slow.Close()
	defer fast.Close()

	hub.Broadcast(mustEncode(t, domain.EventCardAdded, "r1"))
	receive(t, fast)

	delivered, dropped := hub.Broadcast(mustEncode(t, domain.EventCardUpdated, "r1"))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, int64(3), m.delivered.Load())
	assert.Equal(t, int64(1), m.dropped.Load())
	assert.Equal(t, "card-added", receive(t, slow).Type)
	assert.Equal(t, "card-updated", receive(t, fast).Type)
}

func TestSubscriber_JoinLeaveAndRooms(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 8, nil)
	sub := hub.NewSubscriber()
	defer sub.Close()

	sub.Join("r1")
	sub.Join("r1")
	sub.Join("r2")
	assert.ElementsMatch(t, []string{"r1", "r2"}, sub.Rooms())
	assert.Equal(t, 1, hub.RoomSize("r1"))

	sub.Leave("r1")
	hub.Broadcast(mustEncode(t, domain.EventCardAdded, "r1"))
	expectNothing(t, sub)
	assert.Equal(t, 0, hub.RoomSize("r1"))

	hub.Broadcast(mustEncode(t, domain.EventCardAdded, "r2"))
	assert.Equal(t, "r2", receive(t, sub).Room)
}

func TestSubscriber_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &countingMetrics{}
	hub := NewHub(testLogger(), 8, m)
	sub := hub.Subscribe("r1")
	require.Equal(t, 1, hub.Subscribers())

	sub.Close()
	sub.Close()

	_, ok := <-sub.C()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 0, hub.RoomSize("r1"))
	assert.Equal(t, int64(0), m.subscribers.Load())
	assert.False(t, sub.Offer(mustEncode(t, domain.EventCardAdded, "r1")))

	sub.Join("r1")
	assert.Equal(t, 0, hub.RoomSize("r1"), "closed subscriber must not rejoin")
}

func TestHub_CloseAllEndsEverySubscriber(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 4, nil)
	a := hub.Subscribe("r1")
	b := hub.NewSubscriber()
	require.Equal(t, 2, hub.Subscribers())

	hub.CloseAll()

	for _, sub := range []*Subscriber{a, b} {
		_, ok := <-sub.C()
		assert.False(t, ok)
	}
	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 0, hub.RoomSize("r1"))
}

func TestHub_ConcurrentBroadcastAndClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(testLogger(), 4, nil)
	env := mustEncode(t, domain.EventVoteChanged, "r1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		sub := hub.Subscribe("r1")
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Broadcast(env)
			}
		}()
		go func(name string) {
			defer wg.Done()
			sub.Join(name)
			sub.Close()
		}(fmt.Sprintf("room-%d", i))
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 0, hub.RoomSize("r1"))
}
