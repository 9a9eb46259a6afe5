// Background consumer for the booking.confirmed queue.  Confirmed
// bookings are appended to logs/booking.log so operators have a plain
// text audit trail independent of the database.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartBookingConsumer connects to RabbitMQ, declares the durable
// booking.confirmed queue and consumes it forever.  It reconnects with
// exponential backoff on broker failures and rejects (without requeue)
// messages it cannot process, so a poison message never wedges the
// loop.
func StartBookingConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("booking-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Booking confirmed | booking_id=%d | user_id=%d | hotel=%q | room_id=%d | %s -> %s | guests=%d+%d | total=%d cents\n",
		ev.ConfirmedAt, ev.BookingID, ev.UserID, ev.HotelName, ev.RoomID,
		ev.CheckIn, ev.CheckOut, ev.NumAdults, ev.NumChildren, ev.TotalAmountCents)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
