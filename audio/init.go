package audio

import (
	"errors"
	"fmt"
	"reflect"
)

type Initer interface {
	InitAudio(Params)
}

// Params describe the stream every node renders into.
type Params struct {
	SampleRate float64
	BlockSize  int
}

func (p *Params) InitAudio(q Params) { *p = q }

func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %v", p.SampleRate)
	}
	if p.BlockSize <= 0 {
		return fmt.Errorf("audio: invalid block size %d", p.BlockSize)
	}
	return nil
}

// Init walks x (struct fields, slice and array elements, pointers) and calls
// InitAudio on everything that implements Initer.  It stops walking at the
// first Initer it finds on each path.
func Init(x interface{}, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := initVal(reflect.ValueOf(x), p); err != nil {
		return errors.New("audio.Init: " + err.Error())
	}
	return nil
}

func MustInit(x interface{}, p Params) {
	if err := Init(x, p); err != nil {
		panic(err)
	}
}

var initerType = reflect.TypeOf(new(Initer)).Elem()

func initVal(v reflect.Value, p Params) (err error) {
	if !v.IsValid() || v.Kind() == reflect.Ptr && v.IsNil() || !v.CanInterface() {
		return
	}

	v = reflect.Indirect(v)
	if v.CanAddr() && v.Type().Name() != "" && v.Kind() != reflect.Interface {
		v = v.Addr()
	}
	if x, ok := v.Interface().(Initer); ok {
		x.InitAudio(p)
		return
	}

	defer func() {
		if err != nil {
			// append v to the Init stack trace
			err = fmt.Errorf("%s\n\t%#v", err, v)
		}
	}()
	if t := v.Type(); t.Kind() != reflect.Ptr && reflect.PtrTo(t).Implements(initerType) {
		return fmt.Errorf("%s does not implement audio.Initer but *%s does.\nInit stack:", t, t)
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Interface:
		return initVal(v.Elem(), p)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err = initVal(v.Field(i), p); err != nil {
				return
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err = initVal(v.Index(i), p); err != nil {
				return
			}
		}
	}

	return
}
