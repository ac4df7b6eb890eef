package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	f, err := Get("cssmin")
	require.NoError(t, err)
	o, err := f.Filter("application/javascript", []byte("a {\n  color: #ff0000;\n}\n"))
	require.NoError(t, err)
	require.Equal(t, "a{color:red}", string(o))

	f, err = Get("?minify")
	require.NoError(t, err)
	o, err = f.Filter("text/css", []byte("b {  margin:  0px ; }"))
	require.NoError(t, err)
	require.Equal(t, "b{margin:0}", string(o))

	_, err = Get("less")
	require.True(t, ErrUnknownFilter.Is(err))
}

func TestResolve(t *testing.T) {
	ls, err := Resolve([]string{"cssmin", "?jsmin"}, false)
	require.NoError(t, err)
	require.Len(t, ls, 2)

	ls, err = Resolve([]string{"cssmin", "?jsmin"}, true)
	require.NoError(t, err)
	require.Len(t, ls, 1)
	require.Equal(t, "cssmin", ls[0].(*Min).Name)

	_, err = Resolve([]string{"?sass"}, false)
	require.True(t, ErrUnknownFilter.Is(err))
}

func TestMinifyUnknownType(t *testing.T) {
	f, err := Get("minify")
	require.NoError(t, err)
	in := []byte("plain   text\n")
	o, err := f.Filter("text/plain", in)
	require.NoError(t, err)
	require.Equal(t, in, o)

	_, err = (&Min{Name: "scss", MediaType: "text/x-scss"}).Filter("text/css", in)
	require.True(t, ErrFilter.Is(err))
}
