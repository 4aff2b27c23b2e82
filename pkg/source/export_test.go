package source

import (
	"net/http"

	"github.com/spf13/afero"
)

func OverloadFS(overload afero.Fs) func() {
	fsRef := fs
	fs = overload
	return func() { fs = fsRef }
}

func OverloadClient(overload *http.Client) func() {
	clientRef := client
	client = overload
	return func() { client = clientRef }
}
