package tcrypto

import (
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// clearFr overwrites a scalar's limbs with zero. Go has no destructor to
// hook this to automatically (there is no equivalent of the zeroize crate
// in this corpus), so every type that carries a secret scalar calls this
// explicitly from its own Zeroize method, and additionally registers a
// finalizer as a defense-in-depth backstop in case a caller forgets.
func clearFr(e *fr.Element) {
	for i := range e {
		e[i] = 0
	}
}

// armFinalizer arranges for clearFr to run if the owner of e is garbage
// collected without an explicit Zeroize call. Finalizers are not a
// guarantee of prompt zeroization, only a backstop.
func armFinalizer(owner interface{}, e *fr.Element) {
	runtime.SetFinalizer(owner, func(interface{}) { clearFr(e) })
}

// disarmFinalizer removes the finalizer registered by armFinalizer. Called
// once Zeroize has already cleared the scalar, so the finalizer doesn't
// need to run at all.
func disarmFinalizer(owner interface{}) {
	runtime.SetFinalizer(owner, nil)
}
