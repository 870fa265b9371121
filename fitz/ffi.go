package fitz

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -lmupdf -lmupdf-third -lm

#include "wrapper.h"
#include <stdlib.h>
*/
import "C"
