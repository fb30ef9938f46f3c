package database

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/hokm/consts"
)

// writeInterval spaces out text frames so clients render them in order.
const writeInterval = 30 * time.Millisecond

// Player is one authenticated session. Its flags are touched by the network
// goroutine and by whichever table goroutine drives the player, so they are atomic.
type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	RoomID int64  `json:"roomId"`

	conn    *network.Conn
	answers chan *protocol.Packet
	state   consts.StateID
	online  int32
	reading int32
}

func newPlayer(id int64, name string, conn *network.Conn) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		conn:    conn,
		answers: make(chan *protocol.Packet, 8),
		online:  1,
	}
}

func (p *Player) Online() bool {
	return atomic.LoadInt32(&p.online) == 1
}

// Offline drops the connection. A waiting room frees the seat; a running
// table keeps it and plays it automatically.
func (p *Player) Offline() {
	if !atomic.CompareAndSwapInt32(&p.online, 1, 0) {
		return
	}
	_ = p.conn.Close()
	connPlayers.Del(p.conn.ID())
	close(p.answers)
	room := getRoom(p.RoomID)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	Broadcast(room.ID, fmt.Sprintf("%s lost connection! \n", p.Name), p.ID)
	if room.State == consts.RoomStateWaiting {
		room.removePlayer(p)
	}
	room.cancel()
}

// Listening forwards client packets while a question is open and drops the rest.
func (p *Player) Listening() error {
	for {
		packet, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if atomic.LoadInt32(&p.reading) == 1 {
			p.answers <- packet
		}
	}
}

func (p *Player) SetState(state consts.StateID) {
	p.state = state
}

func (p *Player) CurrentState() consts.StateID {
	return p.state
}

func (p *Player) WriteString(data string) error {
	time.Sleep(writeInterval)
	return p.conn.Write(protocol.Packet{Body: []byte(data)})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{Body: json.Marshal(data)})
}

// WriteError reports err to the client; ErrorsExist is only passed back.
func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.conn.Write(protocol.Packet{Body: []byte(err.Error() + "\n")})
}

// StartTransaction opens the input of the client and starts forwarding answers.
func (p *Player) StartTransaction() {
	atomic.StoreInt32(&p.reading, 1)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	atomic.StoreInt32(&p.reading, 0)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) AskForInt(timeout ...time.Duration) (int, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	packet, err := p.answer(timeout...)
	if err != nil {
		return 0, err
	}
	return packet.Int()
}

// AskForString returns the trimmed answer, ErrorsTimeout when the first
// timeout passes without one.
func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.AskForStringWithoutTransaction(timeout...)
}

// AskForStringWithoutTransaction reads inside a transaction the caller opened.
func (p *Player) AskForStringWithoutTransaction(timeout ...time.Duration) (string, error) {
	packet, err := p.answer(timeout...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(packet.String()), nil
}

func (p *Player) answer(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.answers:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.answers
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	if strings.EqualFold(strings.TrimSpace(packet.String()), "exit") {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
