package object

import "testing"

func TestIsNoneOnlyMatchesNoneSingleton(t *testing.T) {
	if !IsNone(None) {
		t.Fatal("IsNone(None) should be true")
	}
	if IsNone(int64(0)) {
		t.Fatal("IsNone(0) should be false")
	}
}

func TestIsNotImplementedOnlyMatchesSentinel(t *testing.T) {
	if !IsNotImplemented(NotImplemented) {
		t.Fatal("IsNotImplemented(NotImplemented) should be true")
	}
	if IsNotImplemented(None) {
		t.Fatal("IsNotImplemented(None) should be false")
	}
}

func TestIsEllipsisOnlyMatchesSingleton(t *testing.T) {
	if !IsEllipsis(Ellipsis) {
		t.Fatal("IsEllipsis(Ellipsis) should be true")
	}
	if IsEllipsis(None) {
		t.Fatal("IsEllipsis(None) should be false")
	}
}

func TestBoolReturnsCanonicalSingletons(t *testing.T) {
	if Bool(true) != True {
		t.Fatal("Bool(true) should return the True singleton")
	}
	if Bool(false) != False {
		t.Fatal("Bool(false) should return the False singleton")
	}
}
