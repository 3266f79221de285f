// Package broadcast provides a type-safe latest-value cell with subscriber management.
//
// A Cell always holds a value. Subscribers receive that value as soon as they
// subscribe and every value published afterwards, which makes the cell a good
// fit for observable state such as the current viewport class.
//
// Basic usage:
//
//	cell := broadcast.NewCell(viewport.ScreenState{}, 1)
//	defer cell.Close()
//
//	ctx := context.Background()
//	sub := cell.Subscribe(ctx)
//	defer sub.Close()
//
//	cell.Publish(ctx, viewport.Classify(1280, 800))
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data.Class())
//	}
//
// Publishing never blocks. When a subscriber falls behind, its oldest
// pending value is replaced so it catches up on the most recent one.
//
// Subscriptions are cleaned up when:
// - The subscriber's context is cancelled
// - The subscriber is closed
// - The cell is closed
package broadcast
