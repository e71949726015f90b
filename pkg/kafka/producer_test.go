package kafka

import "testing"

func TestNewProducer(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})

	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestWriterFor_ReusesPerTopic(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writerFor("underwriting.events")
	w2 := p.writerFor("underwriting.events")
	if w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	w3 := p.writerFor("underwriting.audit")
	if w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}
	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	_ = p.writerFor("topic-a")
	_ = p.writerFor("topic-b")

	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}
