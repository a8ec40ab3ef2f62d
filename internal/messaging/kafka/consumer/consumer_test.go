package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hr-analytics/internal/events"
	"go-hr-analytics/internal/notification"
	notificationMock "go-hr-analytics/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func eventMessage(t *testing.T, offset int64, e events.AccountNotificationEvent) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(e)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeAccountNotifications(t *testing.T) {
	t.Run("sends valid events and commits everything", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
			eventMessage(t, 1, events.AccountNotificationEvent{EventType: events.VerificationRequested, Email: "a@x.io", Code: "111111"}),
			{Offset: 2, Value: []byte("{not json")},
			eventMessage(t, 3, events.AccountNotificationEvent{EventType: "unknown", Email: "a@x.io"}),
			eventMessage(t, 4, events.AccountNotificationEvent{EventType: events.PasswordResetRequested, Email: "b@x.io", Code: "222222"}),
		}}
		ctrl := gomock.NewController(t)
		mailer := notificationMock.NewMockMailer(ctrl)
		var sent []notification.Message
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				sent = append(sent, msg)
				return nil
			}).Times(2)

		ConsumeAccountNotifications(ctx, reader, mailer, zap.NewNop())

		assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
		assert.Len(t, sent, 2)
		assert.Equal(t, "a@x.io", sent[0].To)
		assert.Equal(t, "b@x.io", sent[1].To)
	})

	t.Run("send failure is committed without retry", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
			eventMessage(t, 7, events.AccountNotificationEvent{EventType: events.VerificationRequested, Email: "a@x.io"}),
		}}

		ctrl := gomock.NewController(t)
		mailer := notificationMock.NewMockMailer(ctrl)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(1)

		ConsumeAccountNotifications(ctx, reader, mailer, zap.NewNop())

		assert.Equal(t, []int64{7}, reader.committed)
	})
}
