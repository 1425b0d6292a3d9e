//go:build unix

package shared

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// ChannelFD is where a spawned worker finds its end of the channel.
const ChannelFD = 3

// SocketPair returns a connected local channel: a conn for this process
// and a file to hand the spawned peer as ChannelFD via ExtraFiles.
// ExtraFiles re-dups its entries in the child, so close-on-exec here only
// keeps the raw descriptors out of unrelated children.
func SocketPair() (net.Conn, *os.File, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, err
	}
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	local := os.NewFile(uintptr(fds[0]), "channel")
	remote := os.NewFile(uintptr(fds[1]), "channel")
	conn, err := net.FileConn(local)
	// FileConn dups the descriptor, the originals are ours to close
	local.Close() //nolint:errcheck
	if err != nil {
		remote.Close() //nolint:errcheck
		return nil, nil, err
	}
	return conn, remote, nil
}

// FDConn attaches to the channel end inherited at fd.
func FDConn(fd uintptr) (net.Conn, error) {
	f := os.NewFile(fd, "channel")
	if f == nil {
		return nil, os.ErrInvalid
	}
	defer f.Close() //nolint:errcheck
	return net.FileConn(f)
}
