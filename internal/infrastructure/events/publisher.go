// Package events publica eventos de produção num broker AMQP. O painel da
// fábrica e as notificações de etapa consomem a fila do outro lado.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Luiz-H456/botezini/internal/application/order"
	"github.com/Luiz-H456/botezini/pkg/logger"
)

var _ order.StagePublisher = (*Publisher)(nil)

// StageChangeMessage é o corpo JSON publicado a cada avanço de etapa.
type StageChangeMessage struct {
	OrderNumber string    `json:"order_number"`
	FromStage   string    `json:"from_stage"`
	ToStage     string    `json:"to_stage"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher publica mudanças de etapa num exchange direct durável.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
	log      *logger.Logger
}

// NewPublisher conecta no broker e declara exchange, fila e bind.
func NewPublisher(url, exchange, queue string, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}

	p := &Publisher{conn: conn, channel: channel, exchange: exchange, queue: queue, log: log}
	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("declarar exchange e fila: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := p.channel.QueueBind(p.queue, p.queue, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishStageChange publica o evento de avanço de etapa como mensagem
// persistente.
func (p *Publisher) PublishStageChange(ctx context.Context, orderNumber, fromStage, toStage string) error {
	body, err := json.Marshal(StageChangeMessage{
		OrderNumber: orderNumber,
		FromStage:   fromStage,
		ToStage:     toStage,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal mensagem: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publicar mensagem: %w", err)
	}

	p.log.Info().
		Str("pedido", orderNumber).
		Str("de", fromStage).
		Str("para", toStage).
		Msg("evento de etapa publicado")
	return nil
}

// Close encerra canal e conexão.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
