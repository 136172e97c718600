package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestToggleSubscription(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	svc := NewSubscriptionService(ctx, deps)

	_, err := svc.ToggleSubscription(alice.Id, alice.Id)
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))

	status, err := svc.ToggleSubscription(alice.Id, bob.Id)
	require.NoError(t, err)
	assert.True(t, status.Subscribed)

	counts, err := store.CountSubscribers(ctx, []string{bob.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[bob.Id])

	status, err = svc.ToggleSubscription(alice.Id, bob.Id)
	require.NoError(t, err)
	assert.False(t, status.Subscribed)

	_, err = svc.ListChannelSubscribers(alice.Id, bob.Id, 1, 10)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
}

func TestListChannelSubscribers(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")
	svc := NewSubscriptionService(ctx, deps)

	for _, pair := range [][2]string{{bob.Id, alice.Id}, {carol.Id, alice.Id}, {alice.Id, bob.Id}} {
		_, err := svc.ToggleSubscription(pair[0], pair[1])
		require.NoError(t, err)
	}

	page, err := svc.ListChannelSubscribers(alice.Id, alice.Id, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 2)
	assert.EqualValues(t, 2, page.TotalDocs)

	byName := map[string]bool{}
	for _, doc := range page.Docs {
		byName[doc.Subscriber.UserName] = doc.Subscriber.SubscribedToSubscriber
		if doc.Subscriber.Id == bob.Id {
			assert.EqualValues(t, 1, doc.Subscriber.SubscribersCount)
		}
	}
	assert.Equal(t, map[string]bool{"bob": true, "carol": false}, byName)
}

func TestListSubscribedChannelsLatestVideo(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")
	seedVideo(t, store, bob.Id, "older", true)
	newest := seedVideo(t, store, bob.Id, "newest", true)
	seedVideo(t, store, bob.Id, "draft", false)
	svc := NewSubscriptionService(ctx, deps)

	for _, channel := range []string{bob.Id, carol.Id} {
		_, err := svc.ToggleSubscription(alice.Id, channel)
		require.NoError(t, err)
	}

	page, err := svc.ListSubscribedChannels(alice.Id, alice.Id, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 2)
	for _, doc := range page.Docs {
		switch doc.SubscribedChannel.Id {
		case bob.Id:
			require.NotNil(t, doc.SubscribedChannel.LatestVideo)
			assert.Equal(t, newest.Id, doc.SubscribedChannel.LatestVideo.Id)
		case carol.Id:
			assert.Nil(t, doc.SubscribedChannel.LatestVideo)
		default:
			t.Fatalf("unexpected channel %s", doc.SubscribedChannel.Id)
		}
	}
}
