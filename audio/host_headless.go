//go:build headless

package audio

// Device hosts are unavailable in headless builds; use OfflineHost.

type PortAudioHost struct{}

func NewPortAudioHost(input bool) *PortAudioHost { return &PortAudioHost{} }

func (h *PortAudioHost) Start(p Params, proc Processor) error { return ErrNoDevice }
func (h *PortAudioHost) Stop() error                          { return nil }

type OtoHost struct{}

func NewOtoHost() *OtoHost { return &OtoHost{} }

func (h *OtoHost) Start(p Params, proc Processor) error { return ErrNoDevice }
func (h *OtoHost) Stop() error                          { return nil }
