// Package procman simulates a priority preemptive process scheduler coupled
// with a multi-unit resource allocator.
//
// A Service owns one engine instance: a process tree rooted at "init", a
// stable priority ready queue, a single running slot and a fixed set of
// resources. Every operation runs to completion under the service lock and
// ends with a reschedule:
//
//	srv, _ := procman.New()
//	_ = srv.Create(ctx, "a", 1)    // a preempts init
//	_ = srv.Request(ctx, "R2", 2)  // a holds both units of R2
//	_ = srv.Timeout(ctx)           // a keeps running, nothing outranks it
//	fmt.Println(srv.Running().Name)
//
// Errors are normalized pingcap/errors kinds from model/types. All of them
// leave the engine unchanged except types.ErrNoRunnableProcess, which is
// fatal until the caller reinitialises.
package procman
