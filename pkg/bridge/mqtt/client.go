package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/service"
)

// CommandClient sends requests to the CommandServer of a device and
// waits for the results. Results are matched by request ID, so several
// clients may share a device.
type CommandClient struct {
	Broker Broker
	Device string
	ID     string

	sub     io.Closer
	prefix  string
	seq     uint64
	pending map[string]chan *service.Result
	lock    sync.Mutex
}

// NewCommandClient creates a CommandClient and subscribes the results.
func NewCommandClient(broker Broker, device, id string) *CommandClient {
	c := &CommandClient{
		Broker:  broker,
		Device:  device,
		ID:      id,
		prefix:  strconv.FormatInt(time.Now().UnixNano(), 36),
		pending: make(map[string]chan *service.Result),
	}
	c.sub = broker.Subscribe(DeviceTopic(device, id, TopicResult), c.handleResult)
	return c
}

// Name is the device the client talks to.
func (c *CommandClient) Name() string {
	return c.Device + "/" + c.ID
}

// Execute sends a request and waits for its result until ctx is done.
// The request ID is assigned by the client.
func (c *CommandClient) Execute(ctx context.Context, req *service.Request) (*service.Result, error) {
	resultCh := make(chan *service.Result, 1)
	c.lock.Lock()
	c.seq++
	req.ID = c.prefix + "-" + strconv.FormatUint(c.seq, 10)
	c.pending[req.ID] = resultCh
	c.lock.Unlock()
	defer func() {
		c.lock.Lock()
		delete(c.pending, req.ID)
		c.lock.Unlock()
	}()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if err := c.Broker.Publish(DeviceTopic(c.Device, c.ID, TopicCmd), data, 1, false); err != nil {
		return nil, err
	}
	select {
	case result := <-resultCh:
		return result, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%s %s: %w", c.Name(), req.Command, ctx.Err())
	}
}

// Close implements io.Closer.
func (c *CommandClient) Close() error {
	return c.sub.Close()
}

func (c *CommandClient) handleResult(topic string, payload []byte) {
	var result service.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		glog.Warningf("%s: %v", topic, err)
		return
	}
	c.lock.Lock()
	resultCh := c.pending[result.ID]
	c.lock.Unlock()
	if resultCh == nil {
		return
	}
	select {
	case resultCh <- &result:
	default:
	}
}
