package main

import (
	"reflect"
	"testing"
)

func TestVideoDrivers(t *testing.T) {
	cases := []struct {
		name, env, goos string
		want            []string
	}{
		{"linux default", "", "linux", []string{"wayland", "x11", "kmsdrm", ""}},
		{"env first", "dummy", "linux", []string{"dummy", "wayland", "x11", "kmsdrm", ""}},
		{"darwin", "", "darwin", []string{"cocoa", ""}},
		{"windows", "", "windows", []string{"windows", ""}},
	}
	for _, c := range cases {
		if got := videoDrivers(c.env, c.goos); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: videoDrivers = %q, want %q", c.name, got, c.want)
		}
	}
}
