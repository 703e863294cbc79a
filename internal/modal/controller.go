package modal

import "github.com/dgilligan/folio/internal/domain"

// Kind names a modal category.
type Kind int

const (
	KindNone Kind = iota
	KindRole
	KindCertificate
)

func (k Kind) String() string {
	switch k {
	case KindRole:
		return "role"
	case KindCertificate:
		return "certificate"
	}
	return "none"
}

// Controller owns the role and certificate slots. The slots are
// independent: both may be open at once, in which case the certificate is
// drawn on top. While either is open the controller holds exactly one
// acquisition of its ScrollLock.
type Controller struct {
	role Slot[domain.Role]
	cert Slot[domain.Certificate]

	lock    *ScrollLock
	release Release
	closed  bool
}

// NewController creates a controller with both slots closed. A nil lock
// gets a hookless one.
func NewController(lock *ScrollLock) *Controller {
	if lock == nil {
		lock = NewScrollLock(nil, nil)
	}
	return &Controller{lock: lock}
}

// SelectRole shows r, replacing any role already shown.
func (c *Controller) SelectRole(r domain.Role) {
	c.role.Select(r)
	c.sync()
}

// SelectCert shows cert if it has an image and reports whether it did.
// Certificates without an image leave the slot untouched.
func (c *Controller) SelectCert(cert domain.Certificate) bool {
	if !cert.HasImage() {
		return false
	}
	c.cert.Select(cert)
	c.sync()
	return true
}

func (c *Controller) CloseRole() {
	c.role.Close()
	c.sync()
}

func (c *Controller) CloseCert() {
	c.cert.Close()
	c.sync()
}

// CloseTop closes whichever modal is drawn on top and returns its kind.
func (c *Controller) CloseTop() Kind {
	top := c.Top()
	switch top {
	case KindCertificate:
		c.CloseCert()
	case KindRole:
		c.CloseRole()
	}
	return top
}

// CloseAll closes both slots.
func (c *Controller) CloseAll() {
	c.role.Close()
	c.cert.Close()
	c.sync()
}

func (c *Controller) ActiveRole() (domain.Role, bool)        { return c.role.Active() }
func (c *Controller) ActiveCert() (domain.Certificate, bool) { return c.cert.Active() }

// AnyOpen reports whether at least one slot is open.
func (c *Controller) AnyOpen() bool {
	return c.role.IsOpen() || c.cert.IsOpen()
}

// Top returns the kind of the modal drawn on top, or KindNone.
func (c *Controller) Top() Kind {
	switch {
	case c.cert.IsOpen():
		return KindCertificate
	case c.role.IsOpen():
		return KindRole
	}
	return KindNone
}

// ScrollLocked reports whether background scrolling is suppressed.
func (c *Controller) ScrollLocked() bool { return c.lock.Locked() }

// Click applies a pointer click. A click on the overlay dismisses the top
// modal; a click on the modal body, or with nothing open, does nothing.
// Returns true when a modal was dismissed.
func (c *Controller) Click(r Region) bool {
	if r != RegionOverlay || !c.AnyOpen() {
		return false
	}
	c.CloseTop()
	return true
}

// Teardown closes both slots and gives back the scroll lock. The
// controller stays closed afterwards: later selections update the slots
// but never re-acquire the lock. Safe to call more than once.
func (c *Controller) Teardown() {
	c.role.Close()
	c.cert.Close()
	c.giveBack()
	c.closed = true
}

// sync takes the lock on the first open slot and gives it back when both
// slots are closed.
func (c *Controller) sync() {
	if c.closed {
		return
	}
	open := c.AnyOpen()
	switch {
	case open && c.release == nil:
		c.release = c.lock.Acquire()
	case !open:
		c.giveBack()
	}
}

func (c *Controller) giveBack() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}
