package metaobject

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PrototypeTestSuite struct {
	suite.Suite
}

func (suite *PrototypeTestSuite) TestCreateDelegating() {
	suite.Run("OpenForExtension", func() {
		s := NewBehaviorSource()
		r := CreateDelegating(s)
		s.AddMethod("later", func(recv *Receiver, args ...any) (any, error) {
			recv.Set("seen", true)
			return "later", nil
		})
		result, err := r.Call("later")
		suite.Nil(err)
		suite.Equal("later", result)
		seen, _ := r.TryGet("seen")
		suite.Equal(true, seen)
	})

	suite.Run("OwnNamesExcludeDelegated", func() {
		s := NewBehaviorSource()
		s.AddMethod("shared", noop)
		s.Set("species", "human")
		r := CreateDelegating(s)
		r.Set("firstName", "Tom")
		suite.Equal([]string{"firstName"}, OwnNames(r))
		suite.NotContains(OwnNames(r), "shared")
		suite.NotContains(OwnNames(r), "species")
	})

	suite.Run("OwnPropertiesShadowPrototype", func() {
		s := NewBehaviorSource().Set("color", "red")
		r := CreateDelegating(s)
		color, err := r.Get("color")
		suite.Nil(err)
		suite.Equal("red", color)
		r.Set("color", "blue")
		color, err = r.Get("color")
		suite.Nil(err)
		suite.Equal("blue", color)
	})

	suite.Run("ChainLookupRecurses", func() {
		grandparent := NewBehaviorSource().Set("origin", "grandparent")
		parent := NewBehaviorSource()
		suite.Nil(parent.SetParent(grandparent))
		r := CreateDelegating(parent)
		origin, err := r.Get("origin")
		suite.Nil(err)
		suite.Equal("grandparent", origin)
	})

	suite.Run("ChainExhausted", func() {
		r := CreateDelegating(NewBehaviorSource())
		_, err := r.Get("missing")
		var notFound *PropertyNotFoundError
		suite.ErrorAs(err, &notFound)
	})

	suite.Run("MethodsBindToOriginalReceiver", func() {
		s := NewBehaviorSource()
		s.AddMethod("rename", func(recv *Receiver, args ...any) (any, error) {
			recv.Set("firstName", args[0])
			return recv, nil
		})
		r := CreateDelegating(s)
		_, err := r.Call("rename", "Frida")
		suite.Nil(err)
		name, _ := r.TryGet("firstName")
		suite.Equal("Frida", name)
		_, onSource := s.Get("firstName")
		suite.False(onSource)
	})

	suite.Run("SharedPrototypeIndependentState", func() {
		s := NewBehaviorSource()
		s.AddMethod("setName", func(recv *Receiver, args ...any) (any, error) {
			recv.Set("name", args[0])
			return recv, nil
		})
		r1 := CreateDelegating(s)
		r2 := CreateDelegating(s)
		_, _ = r1.Call("setName", "Bilbo")
		_, _ = r2.Call("setName", "Frodo")
		n1, _ := r1.TryGet("name")
		n2, _ := r2.TryGet("name")
		suite.Equal("Bilbo", n1)
		suite.Equal("Frodo", n2)

		// both observe a shared implementation change
		s.AddMethod("setName", func(recv *Receiver, args ...any) (any, error) {
			recv.Set("name", "always "+args[0].(string))
			return recv, nil
		})
		_, _ = r1.Call("setName", "Bilbo")
		_, _ = r2.Call("setName", "Frodo")
		n1, _ = r1.TryGet("name")
		n2, _ = r2.TryGet("name")
		suite.Equal("always Bilbo", n1)
		suite.Equal("always Frodo", n2)
	})
}

func (suite *PrototypeTestSuite) TestSetPrototype() {
	suite.Run("Reassigns", func() {
		first := NewBehaviorSource().Set("origin", "first")
		second := NewBehaviorSource().Set("origin", "second")
		r := CreateDelegating(first)
		_, err := SetPrototype(r, second)
		suite.Nil(err)
		suite.Same(second, r.Prototype())
		origin, _ := r.Get("origin")
		suite.Equal("second", origin)
	})

	suite.Run("Detaches", func() {
		r := CreateDelegating(NewBehaviorSource().Set("origin", "x"))
		_, err := SetPrototype(r, nil)
		suite.Nil(err)
		suite.Nil(r.Prototype())
		_, err = r.Get("origin")
		var notFound *PropertyNotFoundError
		suite.ErrorAs(err, &notFound)
	})

	suite.Run("NilReceiver", func() {
		var invalid *InvalidArgumentError
		_, err := SetPrototype(nil, NewBehaviorSource())
		suite.ErrorAs(err, &invalid)
	})
}

func (suite *PrototypeTestSuite) TestCyclicDelegation() {
	suite.Run("SetParentRejectsCycle", func() {
		a := NewBehaviorSource()
		b := NewBehaviorSource()
		suite.Nil(a.SetParent(b))
		var cyclic *CyclicDelegationError
		suite.ErrorAs(b.SetParent(a), &cyclic)
	})

	suite.Run("SelfParentRejected", func() {
		a := NewBehaviorSource()
		var cyclic *CyclicDelegationError
		suite.ErrorAs(a.SetParent(a), &cyclic)
	})

	suite.Run("LookupDetectsCycle", func() {
		// a cycle assembled behind SetParent's back
		a := NewBehaviorSource()
		b := NewBehaviorSource()
		suite.Nil(a.SetParent(b))
		b.parent = a
		r := CreateDelegating(a)
		_, err := r.Get("anything")
		var cyclic *CyclicDelegationError
		suite.ErrorAs(err, &cyclic)
		suite.Equal("anything", cyclic.Name)
	})
}

func TestPrototypeTestSuite(t *testing.T) {
	suite.Run(t, new(PrototypeTestSuite))
}
