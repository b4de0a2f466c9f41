package phone

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// statusWatcher keeps a background websocket connection to the bridge
// event stream so Status() can answer without an HTTP round trip.
type statusWatcher struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	writeTimeout time.Duration
}

func newStatusWatcher() *statusWatcher {
	watcher := &statusWatcher{
		pingInterval: 30 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go watcher.connectInBackground()

	return watcher
}

func (w *statusWatcher) connectInBackground() {
	if err := w.Reconnect(); err != nil {
		log.Printf("Initial connection to phone bridge events failed: %v. Will retry on demand.", err)
	} else {
		log.Printf("Successfully connected to phone bridge event stream")
	}
}

func (w *statusWatcher) IsConnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn != nil
}

func (w *statusWatcher) Reconnect() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}

	url := os.Getenv("PHONE_BRIDGE_WS_URL")
	if url == "" {
		url = "ws://localhost:5001/api/phone/events"
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return err
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(w.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong to phone bridge: %v", err)
		}
		return nil
	})

	w.conn = conn

	go w.keepAlive()

	return nil
}

func (w *statusWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
}

func (w *statusWatcher) keepAlive() {
	ticker := time.NewTicker(w.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		w.mu.Lock()
		conn := w.conn
		if conn == nil {
			w.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(w.writeTimeout),
		)

		if err != nil {
			log.Printf("Ping to phone bridge failed, marking connection as dead: %v", err)
			w.conn = nil
			conn.Close()
			w.mu.Unlock()
			return
		}

		w.mu.Unlock()
	}
}
