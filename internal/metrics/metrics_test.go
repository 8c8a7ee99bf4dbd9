package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/unkn0wn-root/respcodec"
)

func TestObserveDecodeSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "respcodec_test")

	c.ObserveDecode("v2", "SimpleString", 5, time.Millisecond, nil)

	mf, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, m := range mf {
		if m.GetName() == "respcodec_test_frames_decoded_total" {
			found = true
			if got := m.Metric[0].Counter.GetValue(); got != 1 {
				t.Fatalf("expected counter 1, got %v", got)
			}
		}
	}
	if !found {
		t.Fatalf("frames_decoded_total metric not found")
	}
}

func TestNewDefaultsEmptyNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, "")

	mf, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, m := range mf {
		if m.GetName() == "respcodec_frames_decoded_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected namespace to default to respcodec, metric not found")
	}
}

func TestObserveDecodeErrorLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "respcodec_test2")

	c.ObserveDecode("v3", "", 0, time.Microsecond, &respcodec.DecodeError{Offset: 3, Err: respcodec.ErrInvalidMap})

	mf, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var labelVal string
	for _, m := range mf {
		if m.GetName() != "respcodec_test2_decode_errors_total" {
			continue
		}
		for _, lp := range m.Metric[0].Label {
			if lp.GetName() == "error" {
				labelVal = lp.GetValue()
			}
		}
	}
	if labelVal != "invalid_map" {
		t.Fatalf("expected label invalid_map, got %q", labelVal)
	}
}
